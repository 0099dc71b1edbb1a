// Package tanhsinh: precomputed refinement levels for narrow binary
// floats. Eight levels of abscissas (complement entries negated),
// weights and first-complement indices, loaded verbatim by the fast
// initialization strategy so low-precision instantiations skip
// thousands of transcendental evaluations. Deeper levels, if requested,
// are generated lazily by the same extension logic as the generic path.

package tanhsinh

var fastAbscissas = [][]float32{
	{0.0, -0.04863203593, -2.252280754e-05, -4.294161056e-14, -1.167648898e-37},
	{-0.3257285078, -0.002485143543, -1.112433512e-08, -5.378491591e-23},
	{0.3772097382, -0.1404309413, -0.01295943949, -0.0003117359716, -7.952628853e-07, -4.714355182e-11, -5.415222824e-18, -2.040300394e-29},
	{0.1943570033, -0.4608532946, -0.219392561, -0.08512073674, -0.0260331318, -0.005944493369, -0.0009348035442, -9.061530486e-05, -4.683958779e-06, -1.072183876e-07, -8.572949078e-10, -1.767834693e-12, -6.374878495e-16, -2.442937279e-20, -5.251546473e-26, -2.789467162e-33},
	{0.09792388529, 0.2878799327, 0.4612535439, -0.3897263425, -0.2689819652, -0.1766829945, -0.1101085972, -0.06483914248, -0.03588783578, -0.01854517332, -0.008873007558, -0.003891334562, -0.001545791232, -0.0005485655647, -0.0001711779271, -4.612899437e-05, -1.051798518e-05, -1.982859405e-06, -3.011058474e-07, -3.576091908e-08, -3.212800902e-09, -2.102671378e-10, -9.606066479e-12, -2.919026641e-13, -5.586116639e-15, -6.328207135e-17, -3.956461339e-19, -1.260975845e-21, -1.872492175e-24, -1.170030294e-27, -2.740986178e-31, -2.112282721e-35},
	{0.04905596731, 0.1464179843, 0.2415663195, 0.3331422646, 0.4199521113, -0.4989866106, -0.4244155094, -0.356823241, -0.2964499949, -0.2433060914, -0.1972012587, -0.1577807536, -0.1245646024, -0.09698671849, -0.07443136593, -0.05626521395, -0.04186397729, -0.0306332671, -0.02202376481, -0.01554116883, -0.01075156891, -0.007283002803, -0.004823973845, -0.003119681872, -0.001966663685, -0.001206465701, -0.0007188880782, -0.0004152496485, -0.0002320284004, -0.0001251349512, -6.498007492e-05, -3.240693206e-05, -1.548009773e-05, -7.062123337e-06, -3.06755081e-06, -1.264528134e-06, -4.929942806e-07, -1.811062872e-07, -6.244592163e-08, -2.01254968e-08, -6.035865798e-09, -1.676638052e-09, -4.292122274e-10, -1.007222767e-10, -2.154466259e-11, -4.175393124e-12, -7.284737264e-13, -1.136386985e-13, -1.57355351e-14, -1.91921891e-15, -2.044959541e-16, -1.886958307e-17, -1.493871649e-18, -1.00469381e-19, -5.679929178e-21, -2.669103953e-22, -1.030178138e-23, -3.224484876e-25, -8.0747829e-27, -1.594654602e-28, -2.445723975e-30, -2.865919772e-32, -2.521682525e-34, -1.63551444e-36},
	{0.02453976357, 0.07352512299, 0.1222291222, 0.1704679724, 0.2180634735, 0.2648450766, 0.3106517806, 0.3553338252, 0.3987541505, 0.440789599, 0.4813318461, -0.4797119493, -0.4424187717, -0.4068496464, -0.3730497919, -0.3410490083, -0.3108622749, -0.2824905325, -0.2559216165, -0.2311313132, -0.2080845076, -0.1867363915, -0.1670337061, -0.148915992, -0.1323168242, -0.1171650118, -0.1033857457, -0.09090168184, -0.07963394697, -0.069503062, -0.06042977607, -0.05233580938, -0.04514450419, -0.03878138485, -0.03317462969, -0.02825545843, -0.02395843974, -0.0202217242, -0.01698720852, -0.01420063697, -0.0118116462, -0.009773759532, -0.008044336997, -0.006584486831, -0.005358944287, -0.004335923183, -0.00348694536, -0.002786652957, -0.002212608041, -0.001745083828, -0.001366851359, -0.001062965166, -0.0008205510651, -0.0006285988591, -0.0004777623488, -0.0003601686544, -0.0002692384802, -0.0001995185689, -0.0001465272269, -0.0001066134524, -7.682987071e-05, -5.481938554e-05, -3.871519214e-05, -2.705357477e-05, -1.869872988e-05, -1.2778718e-05, -8.631551655e-06, -5.760372383e-06, -3.796652834e-06, -2.470376195e-06, -1.586189035e-06, -1.00458931e-06, -6.272926646e-07, -3.860114498e-07, -2.339766676e-07, -1.396287854e-07, -8.199520529e-08, -4.735733554e-08, -2.688676406e-08, -1.499692369e-08, -8.213543901e-09, -4.414366384e-09, -2.326763262e-09, -1.2020165e-09, -6.082231242e-10, -3.012456307e-10, -1.459438845e-10, -6.911160499e-11, -3.196678326e-11, -1.443120992e-11, -6.353676128e-12, -2.725950519e-12, -1.138734572e-12, -4.627734622e-13, -1.827990225e-13, -7.012046738e-14, -2.609605366e-14, -9.413361335e-15, -3.287925695e-15, -1.11086294e-15, -3.626602264e-16, -1.142787653e-16, -3.471902269e-17, -1.015781907e-17, -2.858532825e-18, -7.727834787e-19, -2.004423992e-19, -4.981568376e-20, -1.184668492e-20, -2.691984904e-21, -5.836667442e-22, -1.205661589e-22, -2.369109351e-23, -4.421339462e-24, -7.823835004e-25, -1.310533144e-25, -2.074345013e-26, -3.096968326e-27, -4.353200528e-28, -5.749955668e-29, -7.122715927e-30, -8.25783542e-31, -8.941541007e-32, -9.02279665e-33, -8.46603012e-34, -7.369272807e-35, -5.936632356e-36, -4.415277839e-37},
	{0.01227135512, 0.03680228095, 0.06129788941, 0.08573475488, 0.1100896299, 0.1343395153, 0.1584617283, 0.1824339697, 0.2062343883, 0.2298416433, 0.2532349634, 0.2763942036, 0.2992998981, 0.3219333097, 0.3442764756, 0.3663122492, 0.3880243378, 0.4093973357, 0.4304167537, 0.4510690435, 0.4713416183, 0.4912228687, -0.489297826, -0.4702300899, -0.4515825479, -0.4333628262, -0.4155775577, -0.39823239, -0.3813319982, -0.3648801001, -0.3488794756, -0.3333319877, -0.318238608, -0.3035994429, -0.2894137636, -0.275680037, -0.2623959593, -0.2495584902, -0.2371638893, -0.2252077531, -0.2136850525, -0.2025901721, -0.1919169483, -0.1816587092, -0.1718083133, -0.1623581887, -0.1533003716, -0.1446265448, -0.1363280753, -0.1283960505, -0.120821315, -0.113594505, -0.1067060822, -0.1001463668, -0.09390556883, -0.08797381831, -0.08234119416, -0.07699775172, -0.07193354881, -0.06713867034, -0.0626032516, -0.0583175, -0.0542717154, -0.050456309, -0.0468618209, -0.0434789361, -0.0402984993, -0.03731152826, -0.0345092259, -0.03188299107, -0.02942442821, -0.02712535566, -0.02497781299, -0.02297406711, -0.02110661737, -0.01936819969, -0.01775178968, -0.01625060483, -0.01485810598, -0.01356799776, -0.01237422849, -0.01127098916, -0.01025271192, -0.009314067826, -0.008449964034, -0.007655540506, -0.006926166179, -0.006257434709, -0.005645159804, -0.005085370197, -0.004574304294, -0.004108404533, -0.003684311494, -0.003298857801, -0.002949061834, -0.002632121306, -0.002345406714, -0.002086454715, -0.001852961444, -0.001642775797, -0.001453892723, -0.001284446528, -0.001132704236, -0.0009970590063, -0.0008760236476, -0.0007682242321, -0.0006723938372, -0.000587366425, -0.0005120708762, -0.0004455251889, -0.0003868308567, -0.0003351674323, -0.0002897872882, -0.0002500105784, -0.0002152204083, -0.0001848582177, -0.0001584193765, -0.0001354489984, -0.0001155379702, -9.8319198e-05, -8.346406605e-05, -7.067910812e-05, -5.970288552e-05, -5.030306831e-05, -4.227371392e-05, -3.543273737e-05, -2.961956641e-05, -2.469297451e-05, -2.052908425e-05, -1.701953324e-05, -1.406979453e-05, -1.159764317e-05, -9.531760786e-06, -7.810469566e-06, -6.380587461e-06, -5.196396351e-06, -4.218715072e-06, -3.414069429e-06, -2.753951574e-06, -2.214161365e-06, -1.774222689e-06, -1.416868016e-06, -1.127584838e-06, -8.942180042e-07, -7.066223315e-07, -5.563602711e-07, -4.364397681e-07, -3.410878407e-07, -2.65555767e-07, -2.059521239e-07, -1.591002641e-07, -1.224171449e-07, -9.381073151e-08, -7.159348586e-08, -5.440972705e-08, -4.117489851e-08, -3.102500976e-08, -2.327473287e-08, -1.738282654e-08, -1.292373523e-08, -9.564367214e-09, -7.045195508e-09, -5.164949276e-09, -3.768272997e-09, -2.735826254e-09, -1.976380568e-09, -1.420541964e-09, -1.015790099e-09, -7.225780068e-10, -5.112816947e-10, -3.598270551e-10, -2.518536224e-10, -1.753014775e-10, -1.213298105e-10, -8.349395075e-11, -5.712266027e-11, -3.8849686e-11, -2.626342738e-11, -1.764649978e-11, -1.178329832e-11, -7.818680628e-12, -5.154836404e-12, -3.376501461e-12, -2.19707447e-12, -1.420047367e-12, -9.115800793e-13, -5.811306251e-13, -3.67867911e-13, -2.312068904e-13, -1.442617249e-13, -8.934966665e-14, -5.492567772e-14, -3.35078831e-14, -2.02840764e-14, -1.218279513e-14, -7.258853736e-15, -4.290062787e-15, -2.514652539e-15, -1.461687113e-15, -8.424330958e-16, -4.81351759e-16, -2.726317943e-16, -1.530442297e-16, -8.513785725e-17, -4.692795039e-17, -2.562597595e-17, -1.386133467e-17, -7.425750192e-18, -3.939309402e-18, -2.069079146e-18, -1.075828622e-18, -5.536671017e-19, -2.819834004e-19, -1.421006375e-19, -7.084243878e-20, -3.493350557e-20, -1.703597751e-20, -8.214706044e-21, -3.915973438e-21, -1.845149816e-21, -8.591874581e-22, -3.953006958e-22, -1.7966698e-22, -8.065408821e-23, -3.575337212e-23, -1.564782132e-23, -6.760041764e-24, -2.882136323e-24, -1.212436233e-24, -5.031421831e-25, -2.059286312e-25, -8.310787798e-26, -3.306518068e-26, -1.296597346e-26, -5.010091032e-27, -1.907179385e-27, -7.150567334e-28, -2.639906037e-28, -9.594664542e-29, -3.432078099e-29, -1.207985066e-29, -4.182464721e-30, -1.424153707e-30, -4.767833382e-31, -1.568949178e-31, -5.073438855e-32, -1.611691916e-32, -5.028356694e-33, -1.540320437e-33, -4.631392443e-34, -1.366470225e-34, -3.955008527e-35, -1.122591825e-35, -3.123848743e-36, -8.519540247e-37, -2.276473481e-37},
}

var fastWeights = [][]float32{
	{1.570796327, 0.2300223945, 0.0002662005138, 1.358178427e-12, 1.001741678e-35},
	{0.9659765794, 0.01834316699, 2.143120456e-07, 2.800315102e-21},
	{1.389614759, 0.5310782754, 0.07638574357, 0.002902517748, 1.198370136e-05, 1.163116581e-09, 2.197079236e-16, 1.363510331e-27},
	{1.523283719, 1.193463026, 0.7374378484, 0.3604614185, 0.1374221077, 0.03917500549, 0.007742601026, 0.0009499468043, 6.248255924e-05, 1.826332059e-06, 1.868728227e-08, 4.937853878e-11, 2.28349267e-14, 1.122753143e-18, 3.09765397e-24, 2.112123344e-31},
	{1.558773356, 1.466014427, 1.29747575, 1.081634985, 0.8501728565, 0.6304051352, 0.4408332363, 0.2902406793, 0.1793244121, 0.1034321542, 0.05528968374, 0.02713351001, 0.0120835436, 0.004816298144, 0.001690873998, 0.0005133938241, 0.0001320523413, 2.811016433e-05, 4.823718203e-06, 6.477756604e-07, 6.583518513e-08, 4.876006097e-09, 2.521634792e-10, 8.675931415e-12, 1.880207173e-13, 2.412423038e-15, 1.708453277e-17, 6.168256849e-20, 1.037679724e-22, 7.345984103e-26, 1.949783362e-29, 1.702438776e-33},
	{1.567781431, 1.543881116, 1.497226223, 1.430008355, 1.345278885, 1.246701207, 1.138272243, 1.024044933, 0.9078793792, 0.7932427008, 0.6830685163, 0.5796781031, 0.4847580912, 0.3993847415, 0.3240825396, 0.2589046395, 0.2035239989, 0.1573262035, 0.1194974113, 0.08910313924, 0.06515553343, 0.04666820805, 0.03269873273, 0.02237947106, 0.0149378351, 0.009707223739, 0.006130037632, 0.003754250977, 0.002225082706, 0.001273327945, 0.0007018595157, 0.0003716669362, 0.0001885644298, 9.139081749e-05, 4.218318384e-05, 1.84818136e-05, 7.659575853e-06, 2.991661588e-06, 1.096883513e-06, 3.759541186e-07, 1.199244278e-07, 3.543477717e-08, 9.649888896e-09, 2.409177326e-09, 5.48283578e-10, 1.130605535e-10, 2.09893354e-11, 3.484193767e-12, 5.134127525e-13, 6.663992283e-14, 7.556721776e-15, 7.420993231e-16, 6.252804845e-17, 4.475759507e-18, 2.693120661e-19, 1.346994157e-20, 5.533583499e-22, 1.843546975e-23, 4.913936871e-25, 1.032939131e-26, 1.686277004e-28, 2.103305749e-30, 1.96992098e-32, 1.359989462e-34},
	{1.570042029, 1.564021404, 1.55205317, 1.534281738, 1.510919723, 1.482243298, 1.448586255, 1.410332971, 1.367910512, 1.321780117, 1.272428346, 1.22035811, 1.16607987, 1.110103194, 1.05292888, 0.995041804, 0.9369046127, 0.8789523456, 0.8215880353, 0.7651792989, 0.7100559012, 0.6565082461, 0.6047867306, 0.555101878, 0.5076251588, 0.4624903981, 0.4197956684, 0.3796055694, 0.3419537959, 0.3068459094, 0.2742622297, 0.2441607779, 0.2164802091, 0.1911426841, 0.1680566379, 0.1471194133, 0.1282197336, 0.111239999, 0.09605839187, 0.08255078811, 0.07059246991, 0.06005964236, 0.05083075757, 0.04278765216, 0.0358165056, 0.02980862812, 0.02466108731, 0.02027718382, 0.01656678625, 0.01344653661, 0.01083993717, 0.00867733075, 0.006895785969, 0.005438899798, 0.004256529599, 0.003304466994, 0.002544065768, 0.001941835776, 0.00146901436, 0.001101126113, 0.0008175410133, 0.0006010398799, 0.0004373949562, 0.0003149720919, 0.0002243596521, 0.000158027884, 0.0001100211285, 7.568399659e-05, 5.142149745e-05, 3.449212476e-05, 2.283211811e-05, 1.490851403e-05, 9.598194128e-06, 6.089910032e-06, 3.806198326e-06, 2.342166721e-06, 1.418306716e-06, 8.447375638e-07, 4.94582887e-07, 2.844992366e-07, 1.606939458e-07, 8.907139514e-08, 4.84209502e-08, 2.579956823e-08, 1.346464552e-08, 6.878461096e-09, 3.437185674e-09, 1.678889768e-09, 8.009978448e-10, 3.729950184e-10, 1.693945779e-10, 7.496739757e-11, 3.230446433e-11, 1.354251291e-11, 5.518236947e-12, 2.18359221e-12, 8.383128961e-13, 3.119497729e-13, 1.124020896e-13, 3.917679451e-14, 1.319434223e-14, 4.289196222e-15, 1.344322288e-15, 4.057557702e-16, 1.177981213e-16, 3.285386163e-17, 8.791316559e-18, 2.25407483e-18, 5.530176913e-19, 1.296452714e-19, 2.899964556e-20, 6.180143249e-21, 1.252867643e-21, 2.412250547e-22, 4.4039067e-23, 7.610577808e-24, 1.242805165e-24, 1.91431069e-25, 2.776125103e-26, 3.783124073e-27, 4.834910155e-28, 5.783178697e-29, 6.460575703e-30, 6.72603739e-31, 6.511153451e-32, 5.847409075e-33, 4.860046055e-34, 3.72923953e-35},
	{1.570607717, 1.569099695, 1.566088239, 1.561582493, 1.555596115, 1.548147191, 1.539258145, 1.528955608, 1.517270275, 1.504236738, 1.489893298, 1.474281762, 1.457447221, 1.439437815, 1.420304486, 1.400100716, 1.378882264, 1.35670689, 1.333634075, 1.309724744, 1.285040985, 1.259645765, 1.233602657, 1.206975567, 1.179828472, 1.152225159, 1.124228984, 1.09590263, 1.067307886, 1.038505436, 1.00955466, 0.9805134517, 0.951438051, 0.9223828892, 0.8934004523, 0.8645411596, 0.8358532563, 0.807382723, 0.7791731997, 0.7512659245, 0.723699687, 0.6965107951, 0.6697330554, 0.6433977657, 0.6175337199, 0.5921672237, 0.5673221206, 0.5430198278, 0.5192793805, 0.4961174844, 0.4735485755, 0.4515848861, 0.4302365164, 0.4095115109, 0.3894159397, 0.3699539819, 0.3511280132, 0.3329386948, 0.3153850641, 0.2984646265, 0.2821734476, 0.2665062456, 0.2514564831, 0.2370164583, 0.2231773949, 0.2099295305, 0.1972622032, 0.1851639366, 0.1736225217, 0.1626250975, 0.1521582278, 0.1422079761, 0.1327599774, 0.1237995069, 0.1153115463, 0.1072808458, 0.09969198461, 0.09252942711, 0.08577757654, 0.0794208254, 0.07344360286, 0.06783041903, 0.06256590638, 0.05763485811, 0.05302226366, 0.04871334138, 0.04469356846, 0.04094870813, 0.0374648342, 0.03422835312, 0.03122602351, 0.02844497325, 0.02587271434, 0.02349715546, 0.02130661237, 0.01928981624, 0.01743592007, 0.01573450311, 0.01417557353, 0.01274956936, 0.01144735783, 0.01026023317, 0.009179912924, 0.008198533005, 0.007308641451, 0.006503191044, 0.005775530877, 0.005119396961, 0.004528901979, 0.003998524263, 0.00352309611, 0.003097791523, 0.002718113458, 0.002379880688, 0.002079214354, 0.001812524299, 0.001576495262, 0.00136807301, 0.001184450486, 0.001023054043, 0.0008815298242, 0.0007577303578, 0.0006497014187, 0.0005556692074, 0.000474027894, 0.0004033275645, 0.0003422626065, 0.0002896605611, 0.0002444714673, 0.0002057577147, 0.0001726844199, 0.0001445103343, 0.0001205792873, 0.0001003121646, 8.319941724e-05, 6.879409311e-05, 5.670537985e-05, 4.659264463e-05, 3.815995412e-05, 3.115105568e-05, 2.534479897e-05, 2.055097594e-05, 1.660655598e-05, 1.337229228e-05, 1.072967541e-05, 8.578209354e-06, 6.832986277e-06, 5.422535892e-06, 4.286926494e-06, 3.376095235e-06, 2.648386225e-06, 2.069276126e-06, 1.610268009e-06, 1.247935512e-06, 9.631005212e-07, 7.401289349e-07, 5.66330284e-07, 4.314482559e-07, 3.272303733e-07, 2.470662451e-07, 1.856849137e-07, 1.3890287e-07, 1.034152804e-07, 7.662387397e-08, 5.649576387e-08, 4.144823356e-08, 3.025519646e-08, 2.197164892e-08, 1.587297809e-08, 1.140646555e-08, 8.152746483e-09, 5.795349573e-09, 4.096757914e-09, 2.879701346e-09, 2.012621022e-09, 1.398441431e-09, 9.659485186e-10, 6.632086347e-10, 4.52575761e-10, 3.069270208e-10, 2.068420354e-10, 1.385028753e-10, 9.214056423e-11, 6.089338706e-11, 3.997338952e-11, 2.60619605e-11, 1.687451934e-11, 1.084916183e-11, 6.925528015e-12, 4.38886519e-12, 2.760858767e-12, 1.723764404e-12, 1.068075044e-12, 6.56694435e-13, 4.00598538e-13, 2.424296605e-13, 1.455249916e-13, 8.663812725e-14, 5.114974901e-14, 2.99421776e-14, 1.737681695e-14, 9.99642401e-15, 5.699626666e-15, 3.220432513e-15, 1.802958964e-15, 9.999957344e-16, 5.493978397e-16, 2.989420886e-16, 1.610765424e-16, 8.593209748e-17, 4.538246827e-17, 2.372253167e-17, 1.227167167e-17, 6.281229049e-18, 3.180614714e-18, 1.593049257e-18, 7.890855159e-19, 3.864733103e-19, 1.87127733e-19, 8.955739455e-20, 4.235742852e-20, 1.979436202e-20, 9.138078558e-21, 4.166641158e-21, 1.876075055e-21, 8.339901949e-22, 3.659575236e-22, 1.584785218e-22, 6.771575694e-23, 2.854281708e-23, 1.186583858e-23, 4.864069936e-24, 1.965643419e-24, 7.829165625e-25, 3.072789229e-25, 1.188107615e-25, 4.524619749e-26, 1.696710187e-26, 6.263641003e-27, 2.275790793e-27, 8.136077716e-28, 2.861306549e-28, 9.896184197e-29, 3.365200893e-29, 1.124807055e-29, 3.694460433e-30, 1.192093301e-30, 3.777757876e-31, 1.175436379e-31, 3.589879078e-32, 1.075842686e-32, 3.162835126e-33, 9.118674189e-34, 2.577393168e-34, 7.139829504e-35, 1.937828921e-35},
}

var fastFirstComplements = []int{1, 0, 1, 1, 3, 5, 11, 22}
